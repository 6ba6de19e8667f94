package sarima

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

var (
	ErrInvalidOrder     = errors.New("invalid model order")
	ErrInvalidInput     = errors.New("series contains non-finite values")
	ErrInsufficientData = errors.New("insufficient data points for the specified order")
	ErrNonConvergence   = errors.New("parameter estimation did not converge")
	ErrNotFitted        = errors.New("model must be fitted before prediction")
)

const (
	// initialCoeff seeds every coefficient before optimisation.
	initialCoeff       = 0.1
	maxFuncEvaluations = 20000
)

// Order represents SARIMA model order (p, d, q) x (P, D, Q, m).
type Order struct {
	P int // Non-seasonal AR order
	D int // Non-seasonal differencing order
	Q int // Non-seasonal MA order
	// Seasonal components
	SP int // Seasonal AR order
	SD int // Seasonal differencing order
	SQ int // Seasonal MA order
	M  int // Seasonal period (7 for daily data with weekly seasonality)
}

func (o Order) String() string {
	return fmt.Sprintf("SARIMA(%d,%d,%d)(%d,%d,%d)[%d]", o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}

// MinObservations is the shortest series Fit accepts for this order: the observations
// consumed by differencing and the AR lags, plus two conditional residuals.
func (o Order) MinObservations() int {
	return o.D + o.SD*o.M + o.P + o.SP*o.M + 2
}

func (o Order) numParams() int {
	return o.P + o.Q + o.SP + o.SQ
}

func (o Order) validate() error {
	if o.P < 0 || o.D < 0 || o.Q < 0 || o.SP < 0 || o.SD < 0 || o.SQ < 0 {
		return fmt.Errorf("%w: negative order in %s", ErrInvalidOrder, o)
	}
	if o.SP+o.SD+o.SQ > 0 && o.M < 2 {
		return fmt.Errorf("%w: seasonal terms need a period of at least 2, got %d", ErrInvalidOrder, o.M)
	}
	return nil
}

// Model represents a SARIMA model.
type Model struct {
	Order     Order
	ARCoeffs  []float64 // Non-seasonal AR coefficients
	MACoeffs  []float64 // Non-seasonal MA coefficients
	SARCoeffs []float64 // Seasonal AR coefficients
	SMACoeffs []float64 // Seasonal MA coefficients

	Variance    float64 // residual variance of the conditional fit
	LogLik      float64
	AIC         float64
	NObs        int
	Evaluations int // objective evaluations spent by the optimiser

	fitted    bool
	data      []float64
	residuals []float64 // aligned with data; zero where no conditional residual exists
	arPoly    []float64
	maPoly    []float64
}

// New creates an unfitted model with the specified order.
func New(order Order) *Model {
	return &Model{
		Order:     order,
		ARCoeffs:  make([]float64, max(order.P, 0)),
		MACoeffs:  make([]float64, max(order.Q, 0)),
		SARCoeffs: make([]float64, max(order.SP, 0)),
		SMACoeffs: make([]float64, max(order.SQ, 0)),
	}
}

// Fit estimates the model coefficients from consecutive, equally spaced observations.
func (m *Model) Fit(values []float64) error {
	if err := m.Order.validate(); err != nil {
		return err
	}
	if need := m.Order.MinObservations(); len(values) < need {
		return fmt.Errorf("%w: have %d observations, need %d for %s", ErrInsufficientData, len(values), need, m.Order)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidInput
		}
	}

	diff := differencingPoly(m.Order)
	w := applyPoly(diff, values)

	k := m.Order.numParams()
	x := make([]float64, k)
	for i := range x {
		x[i] = math.Atanh(initialCoeff)
	}

	// The widest AR lag decides where conditional residuals start.
	arLen := m.Order.P + m.Order.SP*m.Order.M + 1
	if len(w) <= arLen {
		return fmt.Errorf("%w: %d observations left after differencing", ErrInsufficientData, len(w))
	}

	if k > 0 {
		problem := optimize.Problem{
			Func: func(x []float64) float64 {
				ar, ma := m.polynomials(x)
				sse, _, _ := conditionalResiduals(w, ar, ma)
				return sse
			},
		}
		settings := &optimize.Settings{
			FuncEvaluations: maxFuncEvaluations,
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-10,
				Relative:   1e-10,
				Iterations: 100,
			},
		}
		res, err := optimize.Minimize(problem, x, settings, &optimize.NelderMead{})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNonConvergence, err)
		}
		if math.IsNaN(res.F) || math.IsInf(res.F, 0) {
			return fmt.Errorf("%w: objective is not finite", ErrNonConvergence)
		}
		x = res.X
		m.Evaluations = res.Stats.FuncEvaluations
	}

	m.setCoeffs(x)
	ar, ma := m.polynomials(x)
	sse, resid, count := conditionalResiduals(w, ar, ma)

	m.data = append([]float64(nil), values...)
	m.residuals = make([]float64, len(values))
	copy(m.residuals[len(diff)-1:], resid)
	m.arPoly = ar
	m.maPoly = ma
	m.NObs = len(values)

	m.Variance = sse / float64(count)
	if m.Variance > 0 {
		m.LogLik = -float64(count) / 2 * (math.Log(2*math.Pi*m.Variance) + 1)
	} else {
		m.LogLik = math.Inf(1)
	}
	m.AIC = -2*m.LogLik + 2*float64(k+1)

	m.fitted = true
	return nil
}

// Predict generates point forecasts for the specified number of steps ahead.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}

	// c(B) y_t = θ(B)Θ(B^m) e_t with the differencing folded into c.
	c := polyMul(m.arPoly, differencingPoly(m.Order))
	n := len(m.data)

	y := make([]float64, n+steps)
	copy(y, m.data)
	e := make([]float64, n+steps)
	copy(e, m.residuals)

	for t := n; t < n+steps; t++ {
		pred := 0.0
		for i := 1; i < len(c); i++ {
			if t-i >= 0 {
				pred -= c[i] * y[t-i]
			}
		}
		// future shocks are zero
		for j := 1; j < len(m.maPoly); j++ {
			if t-j >= 0 {
				pred += m.maPoly[j] * e[t-j]
			}
		}
		y[t] = pred
	}

	forecasts := make([]float64, steps)
	copy(forecasts, y[n:])
	return forecasts, nil
}

// Residuals returns the conditional residuals aligned with the fitted observations.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	out := make([]float64, len(m.residuals))
	copy(out, m.residuals)
	return out
}

func (m *Model) setCoeffs(x []float64) {
	i := 0
	for _, dst := range [][]float64{m.ARCoeffs, m.MACoeffs, m.SARCoeffs, m.SMACoeffs} {
		for j := range dst {
			dst[j] = math.Tanh(x[i])
			i++
		}
	}
}

// polynomials expands φ(B)Φ(B^m) and θ(B)Θ(B^m) for the unconstrained parameter vector x.
func (m *Model) polynomials(x []float64) (ar, ma []float64) {
	o := m.Order
	coef := func(i int) float64 { return math.Tanh(x[i]) }

	nsAR := make([]float64, o.P+1)
	nsAR[0] = 1
	for i := 0; i < o.P; i++ {
		nsAR[i+1] = -coef(i)
	}
	nsMA := make([]float64, o.Q+1)
	nsMA[0] = 1
	for i := 0; i < o.Q; i++ {
		nsMA[i+1] = coef(o.P + i)
	}
	sAR := make([]float64, o.SP*o.M+1)
	sAR[0] = 1
	for i := 0; i < o.SP; i++ {
		sAR[(i+1)*o.M] = -coef(o.P + o.Q + i)
	}
	sMA := make([]float64, o.SQ*o.M+1)
	sMA[0] = 1
	for i := 0; i < o.SQ; i++ {
		sMA[(i+1)*o.M] = coef(o.P + o.Q + o.SP + i)
	}
	return polyMul(nsAR, sAR), polyMul(nsMA, sMA)
}

// conditionalResiduals runs the ARMA recursion over w with pre-sample shocks set to zero.
func conditionalResiduals(w, ar, ma []float64) (sse float64, resid []float64, count int) {
	start := len(ar) - 1
	resid = make([]float64, len(w))
	for t := start; t < len(w); t++ {
		v := 0.0
		for i, c := range ar {
			v += c * w[t-i]
		}
		for j := 1; j < len(ma) && t-j >= 0; j++ {
			v -= ma[j] * resid[t-j]
		}
		resid[t] = v
		sse += v * v
	}
	return sse, resid, len(w) - start
}

// differencingPoly expands (1-B)^d (1-B^m)^D.
func differencingPoly(o Order) []float64 {
	p := []float64{1}
	for i := 0; i < o.D; i++ {
		p = polyMul(p, []float64{1, -1})
	}
	for i := 0; i < o.SD; i++ {
		s := make([]float64, o.M+1)
		s[0], s[o.M] = 1, -1
		p = polyMul(p, s)
	}
	return p
}

// applyPoly filters values through p, dropping the first len(p)-1 observations.
func applyPoly(p, values []float64) []float64 {
	lag := len(p) - 1
	if len(values) <= lag {
		return nil
	}
	out := make([]float64, len(values)-lag)
	for t := lag; t < len(values); t++ {
		v := 0.0
		for i, c := range p {
			v += c * values[t-i]
		}
		out[t-lag] = v
	}
	return out
}

func polyMul(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}
