package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"foobar/internal/vec"
)

// AddOptions holds the add command's flags and parsed vectors.
type AddOptions struct {
	*RootOptions

	Checked bool
	Start   vec.Vec2
	Vectors []vec.Vec2
}

func newAddCommand(root *RootOptions) *cobra.Command {
	o := &AddOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "add X,Y [X,Y...]",
		Short: "Print the sum of vectors",
		Long: "Adds the given vectors component-wise and prints the result as (x, y).\n" +
			"Sums wrap on overflow unless --checked is set. Write a vector starting with\n" +
			"a minus sign as (-x,y) or pass it after --.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.Flags().BoolVar(&o.Checked, "checked", false, "fail instead of wrapping on integer overflow")
	cmd.Flags().Var((*vecValue)(&o.Start), "start", "vector the sum starts from")
	return cmd
}

// Complete parses every argument as a vector.
func (o *AddOptions) Complete(args []string) error {
	o.Vectors = o.Vectors[:0]
	for _, a := range args {
		v, err := vec.Parse(a)
		if err != nil {
			return err
		}
		o.Vectors = append(o.Vectors, v)
	}
	return nil
}

// Run prints --start plus the sum of the vectors as (x, y).
func (o *AddOptions) Run() error {
	sum, err := o.sum()
	if err != nil {
		return err
	}
	o.log.WithField("n", len(o.Vectors)).WithField("sum", sum).Debug("add")
	_, err = fmt.Fprintln(o.Out, sum)
	return errors.Wrap(err, "write sum")
}

func (o *AddOptions) sum() (vec.Vec2, error) {
	if !o.Checked {
		return o.Start.Add(vec.Sum(o.Vectors...)), nil
	}
	s := o.Start
	for _, v := range o.Vectors {
		var err error
		if s, err = vec.CheckedAdd(s, v); err != nil {
			return vec.Vec2{}, err
		}
	}
	return s, nil
}
