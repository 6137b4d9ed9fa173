package validations

import "wavetags.link/models"

// CreateSubscriptionRequest abonelik planı oluşturma gövdesi.
type CreateSubscriptionRequest struct {
	Plan     string             `json:"subscription" validate:"required,oneof=free pro premium"`
	PlanType string             `json:"planType" validate:"required"`
	Price    float64            `json:"price"`
	Features models.FeatureList `json:"features" validate:"required"`
}

var createSubscriptionMessages = map[string]string{
	"Plan.required":     "Subscription type is required",
	"Plan.oneof":        "Invalid subscription type",
	"PlanType.required": "Plan type is required",
	"Features.required": "Features must be an array",
}

func (r CreateSubscriptionRequest) Validate() error {
	return firstViolation(validate.Struct(r), createSubscriptionMessages)
}

// SetUserLinksRequest kullanıcı link listesi gövdesi.
type SetUserLinksRequest struct {
	Links models.UserLinkEntryList `json:"links" validate:"required"`
}

var setUserLinksMessages = map[string]string{
	"Links.required": "Links must be an array",
}

func (r SetUserLinksRequest) Validate() error {
	return firstViolation(validate.Struct(r), setUserLinksMessages)
}
