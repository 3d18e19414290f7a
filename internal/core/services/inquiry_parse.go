package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

const inquiryPromptTemplate = `Extract freight inquiry details from this customer email. Return JSON only.

EMAIL:
{email_content}

EXTRACT THESE FIELDS (use null if not found):
- customer_name: Customer/company name
- customer_email: Email address
- incoterm: Shipping term (FOB, CIF, CFR, EXW, DDP, etc.)
- service_type: FCL, LCL, or AIR
- pol: Port of Loading (city or port name)
- pod: Port of Discharge / Destination (city or port name)
- commodity: Cargo description
- is_dg: Is dangerous goods? (true/false)
- dg_class: DG class if applicable
- weight_kg: Weight in KG (number only)
- volume_cbm: Volume in CBM (number only)
- container_type: 20GP, 40GP, 40HC, etc.
- container_qty: Number of containers (number only)
- required_date: When shipment is needed
- special_requirements: Any special notes

RULES:
- POL/POD: Extract city names, convert to uppercase (e.g., "jakarta" -> "JAKARTA")
- Service type: Default to FCL if containers mentioned, LCL if CBM mentioned, AIR if urgent/flight
- Weight: Convert to KG if in MT (multiply by 1000)
- Return valid JSON object only, no explanation

JSON:`

// buildInquiryPrompt interpolates the email text into the extraction prompt.
func buildInquiryPrompt(emailContent string) string {
	return strings.Replace(inquiryPromptTemplate, "{email_content}", emailContent, 1)
}

var (
	codeFencePattern   = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	nonAlnumPattern    = regexp.MustCompile(`[^A-Z0-9]`)
	nonNumericPattern  = regexp.MustCompile(`[^0-9.]`)
	quantityPrefix     = regexp.MustCompile(`^\d+X`)
	firstIntegerInText = regexp.MustCompile(`\d+`)
)

const maxContainerQty = 10000

var errNoJSONObject = errors.New("no JSON object found in model response")

// extractJSONObject isolates the first top-level {...} span of a model reply,
// looking inside a fenced code block when there is one.
func extractJSONObject(text string) (string, error) {
	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unterminated JSON object in model response")
}

// inquiryFields is the typed shape of a model reply after validation.
// Every field is optional; numeric fields keep their text until normalization.
type inquiryFields struct {
	CustomerName        *string
	CustomerEmail       *string
	Incoterm            *string
	ServiceType         *string
	POL                 *string
	POD                 *string
	Commodity           *string
	IsDG                *bool
	DGClass             *string
	WeightKg            *string
	VolumeCbm           *string
	ContainerType       *string
	ContainerQty        *string
	RequiredDate        *string
	SpecialRequirements *string
}

// parseModelResponse decodes the JSON object in a model reply and validates
// every known field's type. Unknown fields are ignored.
func parseModelResponse(text string) (*inquiryFields, error) {
	span, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(span)))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	f := &inquiryFields{}
	type field struct {
		key string
		dst **string
	}
	stringFields := []field{
		{"customer_name", &f.CustomerName},
		{"customer_email", &f.CustomerEmail},
		{"incoterm", &f.Incoterm},
		{"service_type", &f.ServiceType},
		{"pol", &f.POL},
		{"pod", &f.POD},
		{"commodity", &f.Commodity},
		{"container_type", &f.ContainerType},
		{"required_date", &f.RequiredDate},
		{"special_requirements", &f.SpecialRequirements},
	}
	numericFields := []field{
		{"weight_kg", &f.WeightKg},
		{"volume_cbm", &f.VolumeCbm},
		{"container_qty", &f.ContainerQty},
		// a class such as 3 or 2.1 often comes back as a number
		{"dg_class", &f.DGClass},
	}

	for _, fd := range stringFields {
		v, err := stringValue(fd.key, raw[fd.key])
		if err != nil {
			return nil, err
		}
		*fd.dst = v
	}
	for _, fd := range numericFields {
		v, err := numericValue(fd.key, raw[fd.key])
		if err != nil {
			return nil, err
		}
		*fd.dst = v
	}
	if f.IsDG, err = boolValue("is_dg", raw["is_dg"]); err != nil {
		return nil, err
	}
	return f, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "null"
	}
}

func stringValue(key string, v any) (*string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	default:
		return nil, fmt.Errorf("field %q: expected string or null, got %s", key, jsonKind(v))
	}
}

func numericValue(key string, v any) (*string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &t, nil
	case json.Number:
		s := t.String()
		return &s, nil
	default:
		return nil, fmt.Errorf("field %q: expected number, string or null, got %s", key, jsonKind(v))
	}
}

func boolValue(key string, v any) (*bool, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return &t, nil
	case string:
		var b bool
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y":
			b = true
		case "false", "no", "n":
			b = false
		case "", "null", "undefined":
			return nil, nil
		default:
			return nil, fmt.Errorf("field %q: cannot read %q as boolean", key, t)
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("field %q: expected boolean, string or null, got %s", key, jsonKind(v))
	}
}

// cleanString trims s and turns blank and "null"/"undefined" sentinels into nil.
func cleanString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	switch strings.ToLower(v) {
	case "", "null", "undefined":
		return nil
	}
	return &v
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(*s)
	return &v
}

func lower(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

// exactNumber reads s as a plain or exponent-form number, which is how every
// JSON number arrives.
func exactNumber(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	return d, err == nil
}

// parseNumber reads a weight or volume. Well-formed numbers ("1500", "1.5e3")
// are taken as is; free text keeps only digits and dots, so "1,200 kg" reads
// as 1200. Negative values are null.
func parseNumber(s *string) *decimal.Decimal {
	s = cleanString(s)
	if s == nil {
		return nil
	}
	d, ok := exactNumber(*s)
	if !ok {
		if strings.HasPrefix(*s, "-") {
			return nil
		}
		var err error
		if d, err = decimal.NewFromString(nonNumericPattern.ReplaceAllString(*s, "")); err != nil {
			return nil
		}
	}
	if d.IsNegative() {
		return nil
	}
	return &d
}

// parseQuantity reads a container count. A well-formed number must be a whole
// positive count; free text gives its first integer, so "2 x 40HC" is 2.
func parseQuantity(s *string) *int {
	s = cleanString(s)
	if s == nil {
		return nil
	}
	if d, ok := exactNumber(*s); ok {
		if !d.IsInteger() || !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(maxContainerQty)) {
			return nil
		}
		n := int(d.IntPart())
		return &n
	}
	if strings.HasPrefix(*s, "-") {
		return nil
	}
	digits := firstIntegerInText.FindString(*s)
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// normalizeServiceType maps free text onto FCL, LCL or AIR.
func normalizeServiceType(s *string) *string {
	s = cleanString(s)
	if s == nil {
		return nil
	}
	v := strings.ToUpper(*s)
	switch {
	case strings.Contains(v, "FCL") || strings.Contains(v, "CONTAINER"):
		v = domain.ServiceTypeFCL
	case strings.Contains(v, "LCL") || strings.Contains(v, "CONSOL"):
		v = domain.ServiceTypeLCL
	case strings.Contains(v, "AIR"):
		v = domain.ServiceTypeAir
	}
	return &v
}

type containerAlias struct {
	alias string
	code  string
}

var containerAliases = func() []containerAlias {
	table := map[string][]string{
		"20GP": {"20GP", "20", "20FT", "20DRY"},
		"40GP": {"40GP", "40", "40FT", "40DRY"},
		"40HC": {"40HC", "40HQ", "40HIGH", "40HIGHCUBE"},
		"45HC": {"45HC", "45HQ"},
		"20RF": {"20RF", "20REEFER"},
		"40RF": {"40RF", "40REEFER"},
	}
	var aliases []containerAlias
	for code, variants := range table {
		for _, v := range variants {
			aliases = append(aliases, containerAlias{alias: v, code: code})
		}
	}
	// longest first; ties broken alphabetically so matching is deterministic
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].alias) != len(aliases[j].alias) {
			return len(aliases[i].alias) > len(aliases[j].alias)
		}
		return aliases[i].alias < aliases[j].alias
	})
	return aliases
}()

// normalizeContainerType maps free text such as "1 X 40 HIGH CUBE" onto an
// ISO size-type code. Unknown values come back uppercased and alphanumeric only.
func normalizeContainerType(s *string) *string {
	s = cleanString(s)
	if s == nil {
		return nil
	}
	v := nonAlnumPattern.ReplaceAllString(strings.ToUpper(*s), "")
	if v == "" {
		return nil
	}
	v = quantityPrefix.ReplaceAllString(v, "")

	for _, a := range containerAliases {
		if v == a.alias {
			return &a.code
		}
	}
	for _, a := range containerAliases {
		if strings.Contains(v, a.alias) {
			return &a.code
		}
	}
	return &v
}

// normalizeInquiry applies per-field cleanup to validated model output.
func normalizeInquiry(f *inquiryFields) *domain.ParsedInquiry {
	isDG := false
	if f.IsDG != nil {
		isDG = *f.IsDG
	}
	return &domain.ParsedInquiry{
		CustomerName:        cleanString(f.CustomerName),
		CustomerEmail:       lower(cleanString(f.CustomerEmail)),
		Incoterm:            upper(cleanString(f.Incoterm)),
		ServiceType:         normalizeServiceType(f.ServiceType),
		POL:                 upper(cleanString(f.POL)),
		POD:                 upper(cleanString(f.POD)),
		Commodity:           cleanString(f.Commodity),
		IsDG:                isDG,
		DGClass:             cleanString(f.DGClass),
		WeightKg:            parseNumber(f.WeightKg),
		VolumeCbm:           parseNumber(f.VolumeCbm),
		ContainerType:       normalizeContainerType(f.ContainerType),
		ContainerQty:        parseQuantity(f.ContainerQty),
		RequiredDate:        cleanString(f.RequiredDate),
		SpecialRequirements: cleanString(f.SpecialRequirements),
		Confidence:          domain.ExtractionConfidence,
	}
}
