package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare object", `{"pol":"jakarta"}`, `{"pol":"jakarta"}`, false},
		{"fenced json", "```json\n{\"pol\":\"jakarta\"}\n```", `{"pol":"jakarta"}`, false},
		{"fenced without tag", "```\n{\"pod\": \"busan\"}\n```", `{"pod": "busan"}`, false},
		{"prose around fence", "Here is the JSON:\n```json\n{\"pol\":\"jakarta\"}\n```\nLet me know!", `{"pol":"jakarta"}`, false},
		{"prose around object", `Sure. {"a":{"b":1}} hope it helps {"c":2}`, `{"a":{"b":1}}`, false},
		{"braces inside strings", `{"note":"use } and { freely","x":"\"}"}`, `{"note":"use } and { freely","x":"\"}"}`, false},
		{"no object", "I could not find any details.", "", true},
		{"unterminated", `{"pol":"jakarta"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModelResponse_FencedReplyIsNormalized(t *testing.T) {
	fields, err := parseModelResponse("Here you go:\n```json\n{\"pol\":\"jakarta\"}\n```")
	require.NoError(t, err)

	inquiry := normalizeInquiry(fields)
	require.NotNil(t, inquiry.POL)
	assert.Equal(t, "JAKARTA", *inquiry.POL)
	assert.Nil(t, inquiry.POD)
	assert.False(t, inquiry.IsDG)
	assert.Equal(t, 0.85, inquiry.Confidence)
}

func TestParseModelResponse_FullReply(t *testing.T) {
	reply := `{
		"customer_name": "PT Sinar Jaya",
		"customer_email": "Logistics@SinarJaya.co.id",
		"incoterm": "fob",
		"service_type": "full container load",
		"pol": " surabaya ",
		"pod": "Rotterdam",
		"commodity": "Furniture",
		"is_dg": "no",
		"dg_class": null,
		"weight_kg": "12,500 kg",
		"volume_cbm": 58.5,
		"container_type": "2 x 40' HC",
		"container_qty": "2 units",
		"required_date": "end of June",
		"special_requirements": "null",
		"unexpected": ["ignored"]
	}`

	fields, err := parseModelResponse(reply)
	require.NoError(t, err)
	inquiry := normalizeInquiry(fields)

	assert.Equal(t, "PT Sinar Jaya", *inquiry.CustomerName)
	assert.Equal(t, "logistics@sinarjaya.co.id", *inquiry.CustomerEmail)
	assert.Equal(t, "FOB", *inquiry.Incoterm)
	assert.Equal(t, "SURABAYA", *inquiry.POL)
	assert.Equal(t, "ROTTERDAM", *inquiry.POD)
	assert.False(t, inquiry.IsDG)
	assert.Nil(t, inquiry.DGClass)
	assert.Equal(t, "12500", inquiry.WeightKg.String())
	assert.Equal(t, "58.5", inquiry.VolumeCbm.String())
	assert.Equal(t, "40HC", *inquiry.ContainerType)
	assert.Equal(t, 2, *inquiry.ContainerQty)
	assert.Equal(t, "end of June", *inquiry.RequiredDate)
	assert.Nil(t, inquiry.SpecialRequirements)
}

func TestParseModelResponse_DGClassAsNumber(t *testing.T) {
	fields, err := parseModelResponse(`{"is_dg": true, "dg_class": 3}`)
	require.NoError(t, err)

	inquiry := normalizeInquiry(fields)
	assert.True(t, inquiry.IsDG)
	assert.Equal(t, "3", *inquiry.DGClass)
}

func TestParseModelResponse_RejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		field string
	}{
		{"object for string", `{"pol": {"city": "jakarta"}}`, "pol"},
		{"array for number", `{"weight_kg": [1000]}`, "weight_kg"},
		{"number for bool", `{"is_dg": 1}`, "is_dg"},
		{"unreadable bool", `{"is_dg": "maybe"}`, "is_dg"},
		{"bool for string", `{"commodity": true}`, "commodity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseModelResponse(tt.reply)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseModelResponse_InvalidJSON(t *testing.T) {
	_, err := parseModelResponse(`{"pol": jakarta}`)
	assert.Error(t, err)
}

func TestNormalizeContainerType(t *testing.T) {
	tests := []struct {
		in   *string
		want *string
	}{
		{ptr("20 FT"), ptr("20GP")},
		{ptr("20'"), ptr("20GP")},
		{ptr("40ft"), ptr("40GP")},
		{ptr("40 HQ"), ptr("40HC")},
		{ptr("1 X 40 HIGH CUBE"), ptr("40HC")},
		{ptr("40' high cube"), ptr("40HC")},
		{ptr("45hc"), ptr("45HC")},
		{ptr("20 reefer"), ptr("20RF")},
		{ptr("40RF"), ptr("40RF")},
		{ptr("flat rack"), ptr("FLATRACK")},
		{ptr("  "), nil},
		{ptr("null"), nil},
		{nil, nil},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.in != nil {
			name = *tt.in
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeContainerType(tt.in))
		})
	}
}

func TestNormalizeServiceType(t *testing.T) {
	tests := map[string]string{
		"fcl":                 "FCL",
		"Full container load": "FCL",
		"LCL consolidation":   "LCL",
		"consol":              "LCL",
		"air freight":         "AIR",
		"Breakbulk":           "BREAKBULK",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got := normalizeServiceType(ptr(in))
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
		})
	}
	assert.Nil(t, normalizeServiceType(ptr("undefined")))
}

func TestParseNumberAndQuantity(t *testing.T) {
	assert.Equal(t, "1200", parseNumber(ptr("1,200 kg")).String())
	assert.Equal(t, "3.75", parseNumber(ptr("3.75 cbm")).String())
	assert.Nil(t, parseNumber(ptr("heavy")))
	assert.Nil(t, parseNumber(ptr("")))

	assert.Equal(t, 2, *parseQuantity(ptr("2 x 40HC")))
	assert.Equal(t, 10, *parseQuantity(ptr("10")))
	assert.Nil(t, parseQuantity(ptr("0")))
	assert.Nil(t, parseQuantity(ptr("several")))
}

func TestParseNumberAndQuantity_JSONNumbersKeepValueAndSign(t *testing.T) {
	assert.Equal(t, "1500", parseNumber(ptr("1.5e3")).String())
	assert.Equal(t, "0.25", parseNumber(ptr("2.5E-1")).String())
	assert.Nil(t, parseNumber(ptr("-2")))
	assert.Nil(t, parseNumber(ptr("-2 cbm")))

	assert.Equal(t, 1000, *parseQuantity(ptr("1e3")))
	assert.Nil(t, parseQuantity(ptr("-2")))
	assert.Nil(t, parseQuantity(ptr("2.5")))
	assert.Nil(t, parseQuantity(ptr("1e9")))

	fields, err := parseModelResponse(`{"weight_kg": 1.5e3, "volume_cbm": -2, "container_qty": 3}`)
	require.NoError(t, err)
	inquiry := normalizeInquiry(fields)
	require.NotNil(t, inquiry.WeightKg)
	assert.Equal(t, "1500", inquiry.WeightKg.String())
	assert.Nil(t, inquiry.VolumeCbm)
	require.NotNil(t, inquiry.ContainerQty)
	assert.Equal(t, 3, *inquiry.ContainerQty)
}

func TestBuildInquiryPrompt(t *testing.T) {
	prompt := buildInquiryPrompt("Subject: RFQ Jakarta to Busan\n\n1x20GP furniture")
	assert.Contains(t, prompt, "RFQ Jakarta to Busan")
	assert.NotContains(t, prompt, "{email_content}")
	assert.True(t, strings.HasSuffix(prompt, "JSON:"))
}
