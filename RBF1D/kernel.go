package RBF1D

// Cubic radial basis phi(r) = r²|r| and its first two derivatives. All three
// vanish at r = 0; the third derivative has a kink there and is never used.

func Phi(r float64) float64 { return r * r * abs(r) }

func DPhi(r float64) float64 { return 3 * abs(r) * r }

func D2Phi(r float64) float64 { return 6 * abs(r) }

func abs(x float64) float64 {
	if x >= 0 {
		return x
	}
	return -x
}
