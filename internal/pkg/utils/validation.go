package utils

import (
	"regexp"

	"svitlo-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	outageGroupRegex = regexp.MustCompile(constvars.RegexOutageGroup)
)

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidOutageGroup reports whether token is a well-formed "<major>.<minor>"
// group identifier. It says nothing about the group existing upstream.
func IsValidOutageGroup(token string) bool {
	return outageGroupRegex.MatchString(token)
}
