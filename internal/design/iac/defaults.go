// Package iac renders the selected services as Terraform-style and
// CloudFormation-style configuration text. Both renderers are pure: identical
// inputs produce byte-identical output, and unrecognized override keys are
// ignored rather than rejected.
package iac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// Format selects the output dialect.
type Format string

const (
	FormatTerraform      Format = "terraform"
	FormatCloudFormation Format = "cloudformation"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTerraform, FormatCloudFormation:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid template format %q", s)
}

// Render dispatches to the renderer for the given format.
func Render(f Format, q domain.Questionnaire, services domain.ServiceSelection, prefs domain.UserPreferences) (string, error) {
	switch f {
	case FormatTerraform:
		return RenderTerraform(q, services, prefs), nil
	case FormatCloudFormation:
		return RenderCloudFormation(q, services, prefs), nil
	}
	return "", fmt.Errorf("invalid template format %q", f)
}

// Per-key fallback values used when an override is absent.
var prefDefaults = map[string]string{
	"rds_storage_gb":         "20",
	"rds_instance_class":     "db.t3.micro",
	"rds_engine":             "postgres",
	"rds_multi_az":           "false",
	"ec2_instance_type":      "t3.medium",
	"ec2_storage_size":       "20",
	"ec2_storage_type":       "gp3",
	"lambda_memory_mb":       "128",
	"lambda_timeout":         "30",
	"lambda_runtime":         "nodejs18.x",
	"s3_storage_class":       "STANDARD",
	"s3_versioning":          "true",
	"s3_encryption":          "true",
	"cloudfront_price_class": "PriceClass_All",
	"cloudfront_caching":     "true",
}

// pref returns the override for key, or its documented default.
func pref(prefs domain.UserPreferences, key string) string {
	if v, ok := prefs[key]; ok {
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case bool:
			return strconv.FormatBool(t)
		case float64:
			if t == float64(int64(t)) {
				return strconv.FormatInt(int64(t), 10)
			}
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		}
	}
	return prefDefaults[key]
}

func prefBool(prefs domain.UserPreferences, key string) bool {
	return pref(prefs, key) == "true"
}

// resourceName flattens the project name into an identifier usable in both
// dialects ("My Shop" -> "my-shop").
func resourceName(projectName string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(projectName)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
