package booking

import "github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД; реализуется *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
