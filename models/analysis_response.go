package models

// SeriesPoint is one day of the observed daily call volume.
type SeriesPoint struct {
	Date       string  `json:"fecha"`
	TotalCalls float64 `json:"llamadas_totales"`
}

// PredictionPoint is one day of the forecast.
type PredictionPoint struct {
	Date       string  `json:"fecha"`
	Prediction float64 `json:"pred"`
}

// Validation compares real and predicted values over the comparison window.
type Validation struct {
	Dates []string  `json:"fechas"`
	Real  []float64 `json:"real"`
	Pred  []float64 `json:"pred"`
	RMSE  float64   `json:"rmse"`
	MAE   float64   `json:"mae"`
	R2    float64   `json:"r2"`
}

// Stats summarises the whole daily series.
type Stats struct {
	Mean           NullFloat `json:"media"`
	StdDev         NullFloat `json:"desviacion"`
	PeakDays       []string  `json:"dias_pico"`
	ValleyDays     []string  `json:"dias_valle"`
	AvgSLARate     NullFloat `json:"promedio_sla"`
	AvgAbandonRate NullFloat `json:"promedio_abandono"`
}

// KeyDates are the split boundaries used for the run.
type KeyDates struct {
	TrainUntil string `json:"train_hasta"`
	ValidFrom  string `json:"valid_desde"`
}

// AnalysisResponse is the payload of the analysis query.
type AnalysisResponse struct {
	Series      []SeriesPoint     `json:"series"`
	Predictions []PredictionPoint `json:"predictions"`
	Validation  Validation        `json:"validation"`
	Stats       Stats             `json:"stats"`
	KeyDates    KeyDates          `json:"fechas_clave"`
}

// ErrorResponse is returned in place of AnalysisResponse when the analysis cannot run.
type ErrorResponse struct {
	Error string `json:"error"`
}
