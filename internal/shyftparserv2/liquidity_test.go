package shyftparserv2

import "testing"

func TestClassifyInstructionShape(t *testing.T) {
	cases := []struct {
		name         string
		instructions []Instruction
		want         LiquidityOp
	}{
		{"none", []Instruction{{ProgramID: "p", Name: "swap"}}, LiquidityOpNone},
		{"add", []Instruction{{ProgramID: "p", Name: "addLiquidity"}}, LiquidityOpAdd},
		{"increase variant", []Instruction{{ProgramID: "p", Name: "increaseLiquidity"}}, LiquidityOpAdd},
		{"remove", []Instruction{{ProgramID: "p", Name: "removeLiquidity"}}, LiquidityOpRemove},
		{"remove wins over add", []Instruction{{ProgramID: "p", Name: "addLiquidity"}, {ProgramID: "p", Name: "removeLiquidity"}}, LiquidityOpRemove},
		{"empty name ignored", []Instruction{{ProgramID: "p", Name: ""}}, LiquidityOpNone},
		{"no instructions", nil, LiquidityOpNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyInstructionShape(c.instructions); got != c.want {
				t.Errorf("ClassifyInstructionShape() = %v, want %v", got, c.want)
			}
		})
	}
}
