package entity

import "github.com/shopspring/decimal"

// DiscountStrategy transforma el total de una venta. Las estrategias son
// funciones puras total -> total, sin estado.
type DiscountStrategy func(total decimal.Decimal) decimal.Decimal

// frequentCustomerRate es el descuento fijo para clientes frecuentes.
var frequentCustomerRate = decimal.NewFromFloat(0.10)

// NoDiscount regresa el total sin cambios.
func NoDiscount() DiscountStrategy {
	return func(total decimal.Decimal) decimal.Decimal {
		return total
	}
}

// PercentageDiscount descuenta una fracción del total (0.25 = 25%).
// No acota el rango: una fracción mayor a 1 produce un total negativo,
// acotarla es responsabilidad de quien la captura.
func PercentageDiscount(rate decimal.Decimal) DiscountStrategy {
	return func(total decimal.Decimal) decimal.Decimal {
		return total.Sub(total.Mul(rate))
	}
}

// FrequentCustomerDiscount aplica el 10% fijo de cliente frecuente.
func FrequentCustomerDiscount() DiscountStrategy {
	return PercentageDiscount(frequentCustomerRate)
}

// SelectStrategy decide la estrategia para cerrar una venta: el cliente
// frecuente tiene precedencia sobre el porcentaje explícito; un
// porcentaje no positivo sin cliente frecuente significa sin descuento.
// El porcentaje llega en escala 0-100 y se convierte a fracción.
func SelectStrategy(frequentCustomer bool, discountPercent float64) DiscountStrategy {
	switch {
	case frequentCustomer:
		return FrequentCustomerDiscount()
	case discountPercent > 0:
		rate := decimal.NewFromFloat(discountPercent).Div(decimal.NewFromInt(100))
		return PercentageDiscount(rate)
	default:
		return NoDiscount()
	}
}
