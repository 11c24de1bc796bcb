package booking

import "github.com/m04kA/SMC-DetailingService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
