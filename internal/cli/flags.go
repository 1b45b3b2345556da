package cli

import (
	"github.com/spf13/pflag"

	"foobar/internal/vec"
)

// vecValue adapts a vec.Vec2 to a flag taking "x,y".
type vecValue vec.Vec2

var _ pflag.Value = (*vecValue)(nil)

func (v *vecValue) String() string { return vec.Vec2(*v).String() }
func (v *vecValue) Type() string   { return "x,y" }

func (v *vecValue) Set(s string) error {
	p, err := vec.Parse(s)
	if err != nil {
		return err
	}
	*v = vecValue(p)
	return nil
}
