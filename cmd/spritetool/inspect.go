package main

import (
	"fmt"

	"github.com/akeil/spritetool/pkg/atlas"
)

func doInspect(sheetPath, indexPath string) error {
	a, err := atlas.Open(sheetPath, indexPath)
	if err != nil {
		return err
	}

	b := a.Sheet().Bounds()
	fmt.Printf("Sprite Sheet %vx%v px", b.Dx(), b.Dy())
	if a.Index.Generated != "" {
		fmt.Printf(", generated %v", a.Index.Generated)
	}
	fmt.Println()
	fmt.Println("--------------------")

	for _, p := range a.Index.Placements {
		fmt.Printf("%5d %5d  %4dx%-4d | %v\n", p.X, p.Y, p.Width, p.Height, p.Name)
	}

	err = a.Verify()
	if err != nil {
		fmt.Printf("%v %v\n", crossmark, err)
		return err
	}
	fmt.Printf("%v %d icons, no overlaps.\n", checkmark, len(a.Index.Placements))
	return nil
}
