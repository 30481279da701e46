package rider

import (
	"fmt"
)

// RiderApplyRequest is the payload for POST /riders. Status is optional; an
// empty value is normalized to "pending" at the boundary.
type RiderApplyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Region      string `json:"region"`
	District    string `json:"district"`
	VehicleType string `json:"vehicle_type"`
	NIDNumber   string `json:"nid_number"`
	Status      string `json:"status"`
}

func (r RiderApplyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// RiderStatusUpdateRequest is the payload for PATCH /riders/:id/status.
// The new status is an unconditional overwrite and is not checked against the
// recognized values; the intended policy is an open question upstream.
type RiderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r RiderStatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
