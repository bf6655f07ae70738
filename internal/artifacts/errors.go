package artifacts

import "errors"

var (
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrAmbiguousArtifact = errors.New("multiple artifacts found")
	ErrNoBytecode        = errors.New("artifact has no bytecode, is the contract abstract or an interface?")
	ErrUnlinkedLibraries = errors.New("artifact has unlinked libraries")
	ErrInvalidArtifact   = errors.New("invalid artifact")
)
