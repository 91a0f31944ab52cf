package model

// PrincipalKind distinguishes the two kinds of authenticated actors.
type PrincipalKind string

const (
	KindStudent PrincipalKind = "student"
	KindTeacher PrincipalKind = "teacher"
)

// Valid reports whether k is a known principal kind.
func (k PrincipalKind) Valid() bool {
	return k == KindStudent || k == KindTeacher
}
