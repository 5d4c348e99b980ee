package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// missingTokens are cell texts treated as blanks.
var missingTokens = map[string]bool{
	"..":   true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
}

// parseValue converts cell text to a Value.
// Blanks and missing tokens become an empty missing Value; text that is not a
// finite number is kept in Raw with Valid unset.
func parseValue(s string) models.Value {
	s = strings.TrimSpace(s)
	if s == "" || missingTokens[s] {
		return models.Value{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return models.Value{Raw: s}
	}
	return models.Value{Raw: s, Float: f, Valid: true}
}
