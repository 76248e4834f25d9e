// Package emit renders initialization programs into target source text. The
// Assembler interface keeps the intermediate representation free of any
// target-language syntax; the JS assembler is the only implementation.
package emit

import "github.com/vk/slpbuild/internal/codegen"

// Assembler renders an initialization program into target source text.
type Assembler interface {
	Assemble(p *codegen.Program) (string, error)
}
