package converter

import (
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		DateOfBirth:    patient.DateOfBirth.Format("2006-01-02"),
		MedicalHistory: patient.MedicalHistory,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
