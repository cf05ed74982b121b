package entity

import "time"

// KPIPoint punto diario de la serie agregada de stock y demanda.
// La serie es estrictamente ascendente por fecha, sin huecos ni duplicados,
// y de solo lectura después de generarse.
type KPIPoint struct {
	Date   time.Time
	Stock  int
	Demand int
}
