package menu

// OrderLine разрешенная позиция заказа: каноническое имя из каталога и цена
type OrderLine struct {
	Name  string
	Price float64
}

// OrderResult результат обсчета заказа.
// Total - сумма только разрешенных позиций; нераспознанные названия
// возвращаются дословно и в сумму не входят.
type OrderResult struct {
	Total      float64
	Items      []OrderLine
	Unresolved []string
}
