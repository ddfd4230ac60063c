package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithTemplateName is an option builder that sets the template the material is instantiated from.
//
// Parameters:
//   - name: the template name, e.g. TemplateSpeedTreeLeaf
//
// Returns:
//   - MaterialBuilderOption: a function that applies the template option to a material
func WithTemplateName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.templateName = name
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithFlag is an option builder that presets a shader flag.
//
// Parameters:
//   - name: the flag name
//   - value: the initial flag state
//
// Returns:
//   - MaterialBuilderOption: a function that applies the flag option to a material
func WithFlag(name string, value FlagValue) MaterialBuilderOption {
	return func(m *material) {
		m.flags[name] = value
	}
}
