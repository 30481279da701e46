package tracking

import (
	"fmt"
)

// TrackingCreateRequest is the payload for POST /tracking. TrackingID is
// optional; a missing id is generated server-side.
type TrackingCreateRequest struct {
	TrackingID string `json:"tracking_id"`
	ParcelID   uint   `json:"parcel_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}

func (t TrackingCreateRequest) Validate() error {
	if t.ParcelID == 0 {
		return fmt.Errorf("parcel_id is required")
	}
	if t.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
