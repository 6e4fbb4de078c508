package main

import (
	"fmt"
	"unsafe"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	Go_RBTree "github.com/g-m-twostay/go-rbtree"
	"github.com/g-m-twostay/go-rbtree/Trees"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("[ OK ]")
	failMark = color.New(color.FgRed).Sprint("[FAIL]")
)

// soak runs random insert/remove passes over size address-ordered nodes,
// validating after every op for small trees and after every pass above.
func soak(size int) error {
	nodes := make([]Trees.Node, size)
	linked := make([]bool, size)
	tree := Trees.NewCached(func(a, b *Trees.Node) bool {
		return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
	}, true, true)
	small := size <= 32

	check := func() error {
		if v := tree.Validate(); !v.Valid {
			return fmt.Errorf("size %d: %s (offender %p, %d nodes)", size, v.Reason, v.Offender, v.NodeCount)
		}
		return nil
	}

	for pass := 0; pass < 10; pass++ {
		for range size {
			i := int(Go_RBTree.CheapRandN(uint32(size)))
			if !linked[i] {
				tree.Insert(&nodes[i])
			} else {
				tree.Remove(&nodes[i])
			}
			linked[i] = !linked[i]
			if small {
				if err := check(); err != nil {
					return err
				}
			}
		}
		if !small {
			if err := check(); err != nil {
				return err
			}
		}
	}
	return nil
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Soak the tree with random ops under the structural validator",
		RunE: func(_ *cobra.Command, _ []string) error {
			limit := count
			if limit > 4096 {
				limit = 4096
			}
			for size := 1; size < limit; {
				size += int(Go_RBTree.CheapRandN(uint32(size))) + 1
				if size > limit {
					size = limit
				}
				fmt.Printf("checking trees built from %d nodes... ", size)
				if err := soak(size); err != nil {
					fmt.Println(failMark)
					return err
				}
				fmt.Println(okMark)
			}
			fmt.Println("all invariants held")
			return nil
		},
	}
}
