//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the step's required fields.
func (s *Step) Validate() error { return validate.Struct(s) }

// Validate checks the method's required fields and that it has steps.
func (m *Method) Validate() error { return validate.Struct(m) }

// Validate checks the category's required fields and that it is non-empty.
func (c *MethodCategory) Validate() error { return validate.Struct(c) }

// Validate checks the intro's required fields.
func (i *Intro) Validate() error { return validate.Struct(i) }

// Validate checks the case study's required fields and that it uses at least one method.
func (c *CaseStudy) Validate() error { return validate.Struct(c) }

// Validate checks the org's required fields. Optional links are not checked here.
func (o *Org) Validate() error { return validate.Struct(o) }

// Validate checks the highlight's required fields and that it carries a link.
func (h *Highlight) Validate() error { return validate.Struct(h) }

// Validate checks the chapter's required fields.
func (c *Chapter) Validate() error { return validate.Struct(c) }
