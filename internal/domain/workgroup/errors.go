package workgroup

import "errors"

var (
	ErrWorkGroupNotFound  = errors.New("work group not found")
	ErrWorkGroupHasMember = errors.New("work group has assigned personnel")
)
