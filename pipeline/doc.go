// Package pipeline holds the stages of the daily call-volume analysis: date normalisation,
// daily aggregation, temporal split, forecasting, scoring and summary statistics.
//
// Every stage is a pure function over values from package models; orchestration and I/O
// live in package service.
package pipeline
