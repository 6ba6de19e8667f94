// Package sarima fits multiplicative seasonal ARIMA models and produces point forecasts.
//
// A SARIMA(p,d,q)(P,D,Q)[m] model is written in lag-operator form as
//
//	φ(B) Φ(B^m) (1-B)^d (1-B^m)^D y_t = θ(B) Θ(B^m) e_t
//
// Coefficients are estimated by conditional sum of squares. The objective is minimised with
// gonum's Nelder-Mead method over tanh-transformed coefficients, which keeps every first-order
// factor stationary and invertible.
//
// # Basic Usage
//
//	model := sarima.New(sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 7})
//	if err := model.Fit(values); err != nil {
//	    return err
//	}
//	forecasts, err := model.Predict(30)
//
// Forecasts are returned on the original scale; the differencing operators are folded into the
// autoregressive polynomial so no separate integration step is needed.
package sarima
