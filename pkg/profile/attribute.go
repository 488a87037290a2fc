package profile

// Attribute is a single named fact about a profile, scoped to a collecting
// application and a section. The (collectApp, section, name) triple is the
// attribute's identity and is fixed at construction; only the value changes
// afterwards.
type Attribute struct {
	collectApp string
	section    string
	name       string
	value      any
}

// NewAttribute creates an attribute. Identity fields may be empty: validity
// is checked lazily via IsValid so that deserialized, possibly incomplete
// attributes can be inspected before being admitted into a profile.
func NewAttribute(collectApp, section, name string, value any) *Attribute {
	return &Attribute{
		collectApp: collectApp,
		section:    section,
		name:       name,
		value:      value,
	}
}

// CollectApp returns the collecting application the attribute belongs to.
func (a *Attribute) CollectApp() string { return a.collectApp }

// Section returns the section the attribute belongs to.
func (a *Attribute) Section() string { return a.section }

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Value returns the current attribute value.
func (a *Attribute) Value() any { return a.value }

// SetValue replaces the attribute value. Returns the attribute for chaining.
func (a *Attribute) SetValue(value any) *Attribute {
	a.value = value
	return a
}

// IsValid reports whether all identity fields are present.
func (a *Attribute) IsValid() bool {
	return a != nil && a.collectApp != "" && a.section != "" && a.name != ""
}

// Clone returns a deep copy of the attribute.
func (a *Attribute) Clone() *Attribute {
	if a == nil {
		return nil
	}
	return &Attribute{
		collectApp: a.collectApp,
		section:    a.section,
		name:       a.name,
		value:      cloneValue(a.value),
	}
}

// identityKey is the uniqueness key for attributes within a profile.
func (a *Attribute) identityKey() string {
	return a.collectApp + "\x00" + a.section + "\x00" + a.name
}
