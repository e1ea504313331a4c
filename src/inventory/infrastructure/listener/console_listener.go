package listener

import "fmt"

// ConsoleListener imprime cada cambio del inventario en la consola.
type ConsoleListener struct{}

// NewConsoleListener crea un listener de consola.
func NewConsoleListener() *ConsoleListener {
	return &ConsoleListener{}
}

// Notify imprime el mensaje con el prefijo de consola.
func (l *ConsoleListener) Notify(message string) error {
	fmt.Println("[CONSOLE] " + message)
	return nil
}
