package reflection

// DeclarationHook is invoked for every declaration created during conversion, in creation order
type DeclarationHook func(project *Project, id ID)

// Config represents conversion settings
type Config struct {
	SkipTests     bool
	OnDeclaration DeclarationHook
}

// Created fires the declaration hook, if any
func (c *Config) Created(project *Project, id ID) {
	if c != nil && c.OnDeclaration != nil {
		c.OnDeclaration(project, id)
	}
}
