package evalbuilder

import (
	"fmt"

	material "github.com/oneQuasi/artifact/pkg/eval/material"
	pesto "github.com/oneQuasi/artifact/pkg/eval/pesto"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "pesto":
			return pesto.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
