package enums

import "fmt"

// Template names the cost-formula family that produced a price, plus the two
// short-circuit outcomes (outsourced table hit, quote-only product).
type Template string

const (
	TemplateWideFormat  Template = "wide_format"
	TemplateRigidBoard  Template = "rigid_board"
	TemplateBanner      Template = "banner"
	TemplateSmallFormat Template = "small_format"
	TemplateCanvas      Template = "canvas"
	TemplateCutVinyl    Template = "cut_vinyl"
	TemplateOutsourced  Template = "outsourced"
	TemplateQuoteOnly   Template = "quote_only"
)

var validTemplates = []Template{
	TemplateWideFormat,
	TemplateRigidBoard,
	TemplateBanner,
	TemplateSmallFormat,
	TemplateCanvas,
	TemplateCutVinyl,
	TemplateOutsourced,
	TemplateQuoteOnly,
}

// String implements fmt.Stringer.
func (t Template) String() string {
	return string(t)
}

// IsValid reports whether the value matches a known Template.
func (t Template) IsValid() bool {
	for _, candidate := range validTemplates {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTemplate converts raw input into a Template.
func ParseTemplate(value string) (Template, error) {
	for _, candidate := range validTemplates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid template %q", value)
}
