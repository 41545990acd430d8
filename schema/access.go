package schema

// Access is a register's access mode.
type Access int

//go:generate go tool stringer -linecomment -type=Access
const (
	AccessRO = Access(0) // ro
	AccessWO = Access(1) // wo
	AccessRW = Access(2) // rw
)

// ParseAccess maps an access mode name to its Access.
func ParseAccess(name string) (access Access, err error) {
	switch name {
	case "ro":
		access = AccessRO
	case "wo":
		access = AccessWO
	case "rw":
		access = AccessRW
	default:
		err = ErrAccess(name)
	}

	return
}
