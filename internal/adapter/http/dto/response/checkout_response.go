package response

import "agroclima_portal/internal/domain/entities"

type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

func FromPreferenceResult(r entities.PreferenceResult) PreferenceResponse {
	return PreferenceResponse{
		ID:               r.ID,
		InitPoint:        r.InitPoint,
		SandboxInitPoint: r.SandboxInitPoint,
	}
}

type PreapprovalResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	InitPoint string `json:"init_point"`
}

func FromPreapprovalResult(r entities.PreapprovalResult) PreapprovalResponse {
	return PreapprovalResponse{
		ID:        r.ID,
		Status:    r.Status,
		InitPoint: r.InitPoint,
	}
}
