package repository

// pgxRows es la interfaz minima para escanear filas de pgx y simplificar los tests.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
