package handler

import (
	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterConsultantInput(req registerConsultantRequest) ports.RegisterConsultantInput {
	return ports.RegisterConsultantInput{
		Name:                 req.Name,
		ExperienceYears:      req.ExperienceYears,
		PreferredRateType:    req.PreferredRateType,
		PreferredRateAmount:  req.PreferredRateAmount,
		PreferredUtilization: req.PreferredUtilization,
		BaseLocation:         req.BaseLocation,
		Remote:               req.Remote,
		Skills:               req.Skills,
		Industries:           req.Industries,
		AvailableFrom:        req.AvailableFrom,
		EngagementLength:     req.EngagementLength,
		Bio:                  req.Bio,
		Contact:              req.Contact,
	}
}

func toUpdateConsultantInput(req updateConsultantRequest) ports.UpdateConsultantInput {
	return ports.UpdateConsultantInput{
		Name:                 req.Name,
		PreferredRateType:    req.PreferredRateType,
		PreferredRateAmount:  req.PreferredRateAmount,
		PreferredUtilization: req.PreferredUtilization,
		Contact:              req.Contact,
	}
}

func toRegisterProjectInput(req registerProjectRequest) ports.RegisterProjectInput {
	return ports.RegisterProjectInput{
		Title:            req.Title,
		Company:          req.Company,
		Description:      req.Description,
		RequiredSkills:   req.RequiredSkills,
		NiceToHaveSkills: req.NiceToHaveSkills,
		Role:             req.Role,
		Utilization:      req.Utilization,
		RateLower:        req.RateLower,
		RateUpper:        req.RateUpper,
		EngagementLength: req.EngagementLength,
		StartDate:        req.StartDate,
		WorkStyle:        req.WorkStyle,
		Location:         req.Location,
		Industry:         req.Industry,
		Contact:          req.Contact,
	}
}

func toUpdateProjectInput(req updateProjectRequest) ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		Title:       req.Title,
		RateLower:   req.RateLower,
		RateUpper:   req.RateUpper,
		Utilization: req.Utilization,
		Contact:     req.Contact,
	}
}

func toCreateInquiryInput(req createInquiryRequest) ports.CreateInquiryInput {
	return ports.CreateInquiryInput{
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
	}
}

// --- Domain → HTTP response ---

func toConsultantResponse(c domain.Consultant) consultantResponse {
	return consultantResponse{
		ID:              c.ID,
		Name:            c.Name,
		ExperienceYears: c.ExperienceYears,
		PreferredRate: rateResponse{
			Type:   string(c.PreferredRate.Type),
			Amount: c.PreferredRate.Amount,
		},
		PreferredUtilization: c.PreferredUtilization,
		BaseLocation:         c.BaseLocation,
		Remote:               c.Remote,
		Skills:               c.Skills,
		Industries:           c.Industries,
		AvailableFrom:        c.AvailableFrom,
		EngagementLength:     c.EngagementLength,
		Bio:                  c.Bio,
		Contact:              c.Contact,
		CreatedAt:            c.CreatedAt,
	}
}

func toListConsultantsResponse(r *ports.ConsultantSearchResult) listConsultantsResponse {
	items := make([]consultantResponse, len(r.Items))
	for i, c := range r.Items {
		items[i] = toConsultantResponse(c)
	}
	return listConsultantsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PerPage:    r.PerPage,
			TotalPages: r.TotalPages,
		},
	}
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:               p.ID,
		Title:            p.Title,
		MaskedCompany:    p.MaskedCompany,
		Description:      p.Description,
		RequiredSkills:   p.RequiredSkills,
		NiceToHaveSkills: p.NiceToHaveSkills,
		Role:             p.Role,
		Utilization:      p.Utilization,
		RateLower:        p.RateLower,
		RateUpper:        p.RateUpper,
		EngagementLength: p.EngagementLength,
		StartDate:        p.StartDate,
		WorkStyle:        string(p.WorkStyle),
		Location:         p.Location,
		Industry:         p.Industry,
		Contact:          p.Contact,
		CreatedAt:        p.CreatedAt,
	}
}

func toListProjectsResponse(r *ports.ProjectSearchResult) listProjectsResponse {
	items := make([]projectResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toProjectResponse(p)
	}
	return listProjectsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			PerPage:    r.PerPage,
			TotalPages: r.TotalPages,
		},
	}
}

func toInquiryResponse(item ports.InquiryListItem) inquiryResponse {
	return inquiryResponse{
		ID:          item.Inquiry.ID,
		TargetID:    item.Inquiry.TargetID,
		TargetType:  string(item.Inquiry.TargetType),
		TargetTitle: item.TargetTitle,
		Name:        item.Inquiry.Name,
		Email:       item.Inquiry.Email,
		Message:     item.Inquiry.Message,
		CreatedAt:   item.Inquiry.CreatedAt,
	}
}

func toStatsResponse(r *ports.StatsResult) statsResponse {
	monthly := make([]monthlyCountResponse, len(r.Monthly))
	for i, m := range r.Monthly {
		monthly[i] = monthlyCountResponse{
			Month:       m.Month,
			Consultants: m.Consultants,
			Projects:    m.Projects,
			Inquiries:   m.Inquiries,
		}
	}
	return statsResponse{
		TotalConsultants: r.TotalConsultants,
		TotalProjects:    r.TotalProjects,
		TotalInquiries:   r.TotalInquiries,
		Monthly:          monthly,
	}
}
