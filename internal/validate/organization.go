package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

// Organization rule messages.
const (
	MsgOrganizationNameRequired = "Organization name is required"
	MsgOrganizationNameLength   = "Organization name must be between 3 and 100 characters"
	MsgOrganizationNameChars    = "Organization name can only contain letters, numbers, spaces, hyphens, and underscores"
)

const (
	tagOrgNameLen   = "orgname_len"
	tagOrgNameChars = "orgname_chars"

	orgNameMinLen = 3
	orgNameMaxLen = 100
)

var orgNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)

// fieldLabels maps JSON field names to the labels used in messages.
var fieldLabels = map[string]string{
	"organization_name": "Organization name",
	"demand_org_id":     "Demand organization ID",
	"supply_org_id":     "Supply organization ID",
}

// OrganizationInput is the body of an organization create request.
type OrganizationInput struct {
	Name string `json:"organization_name" validate:"required,orgname_len,orgname_chars"`
}

// PartnershipInput is the body of a partnership create request.
type PartnershipInput struct {
	DemandOrgID string `json:"demand_org_id" validate:"required,uuid"`
	SupplyOrgID string `json:"supply_org_id" validate:"required,uuid"`
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(tagOrgNameLen, func(fl validator.FieldLevel) bool {
		n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
		return n >= orgNameMinLen && n <= orgNameMaxLen
	})
	_ = v.RegisterValidation(tagOrgNameChars, func(fl validator.FieldLevel) bool {
		return orgNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// OrganizationName checks the name of an organization about to be created.
func OrganizationName(name string) error {
	return check(OrganizationInput{Name: name})
}

// PartnershipIDs checks the two organization ids of a partnership about to be created.
func PartnershipIDs(demandOrgID, supplyOrgID string) error {
	return check(PartnershipInput{DemandOrgID: demandOrgID, SupplyOrgID: supplyOrgID})
}

// check validates input and converts the first failure into a *domain.ValidationError.
func check(input any) error {
	err := structValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return domain.NewValidationError(fe.Field(), message(fe))
}

func message(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case tagOrgNameLen:
		return MsgOrganizationNameLength
	case tagOrgNameChars:
		return MsgOrganizationNameChars
	case "uuid":
		return label + " must be a valid UUID"
	default:
		return label + " is invalid"
	}
}
