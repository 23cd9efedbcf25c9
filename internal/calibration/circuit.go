package calibration

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
)

// ChainCircuit proves knowledge of X such that iterating acc = acc*acc + X
// rounds times, starting from acc = X, yields the public Y. Each round costs
// one multiplication constraint.
type ChainCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`

	rounds int
}

func NewChainCircuit(rounds int) *ChainCircuit {
	return &ChainCircuit{rounds: rounds}
}

func (c *ChainCircuit) Define(api frontend.API) error {
	acc := c.X
	for i := 0; i < c.rounds; i++ {
		acc = api.Add(api.Mul(acc, acc), c.X)
	}
	api.AssertIsEqual(acc, c.Y)
	return nil
}

// Assignment returns a satisfying assignment for seed x.
func (c *ChainCircuit) Assignment(x uint64) *ChainCircuit {
	var xe, acc fr.Element
	xe.SetUint64(x)
	acc.Set(&xe)
	for i := 0; i < c.rounds; i++ {
		acc.Square(&acc)
		acc.Add(&acc, &xe)
	}

	return &ChainCircuit{
		X:      new(big.Int).SetUint64(x),
		Y:      acc.BigInt(new(big.Int)),
		rounds: c.rounds,
	}
}
