// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Authz cuenta decisiones de autorización por recurso y resultado.
type Authz struct {
	decisiones *prometheus.CounterVec
}

// NewAuthz construye y registra los contadores en el registro por defecto.
func NewAuthz() *Authz {
	a := &Authz{
		decisiones: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authz_decisiones_total",
				Help: "Decisiones de autorización por recurso y resultado.",
			},
			[]string{"recurso", "resultado"},
		),
	}
	prometheus.MustRegister(a.decisiones)
	return a
}

// Decision registra una decisión; implementa authz.Recorder.
func (a *Authz) Decision(recurso string, permitido bool) {
	resultado := "denegado"
	if permitido {
		resultado = "permitido"
	}
	a.decisiones.WithLabelValues(recurso, resultado).Inc()
}

// Handler expone el endpoint Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
