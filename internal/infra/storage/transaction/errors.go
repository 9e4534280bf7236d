package transaction

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("transaction.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("transaction.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("transaction.repository: failed to scan row")

	// ErrInvalidType возвращается при попытке сохранить транзакцию неизвестного типа
	ErrInvalidType = errors.New("transaction.repository: invalid transaction type")
)
