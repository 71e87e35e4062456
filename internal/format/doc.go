// Package format prints expanded nodes back to source text.
//
// Назначение: печать результата раскрытия макроса (литерал массива) так,
// чтобы его можно было вставить на место вызова.
// Элементы копируются из исходника байт в байт; синтезируются только скобки,
// запятые и пробелы.
// Не делает: форматирования всего файла и IO.
// Зависимости: internal/ast, internal/source.
package format
