package school

import "context"

// SnapshotRepository определяет интерфейс для сохранения и загрузки
// снимков реестра. Интерфейс реализуется инфраструктурным слоем; домен
// ничего не знает о фактическом механизме хранения.
type SnapshotRepository interface {
	// Load читает сохранённый снимок. Отсутствие снимка не является
	// ошибкой: возвращается пустой снимок со счётчиками, равными 1.
	// Повреждённый снимок возвращает ошибку ErrSnapshotCorrupt.
	Load(ctx context.Context) (*Snapshot, error)

	// Save записывает снимок целиком, перезаписывая прежнее содержимое.
	Save(ctx context.Context, snap *Snapshot) error
}
