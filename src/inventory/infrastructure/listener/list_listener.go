package listener

import "sync"

// ListListener acumula los mensajes en memoria. Lo usan los tests y el
// endpoint de cambios recientes del inventario.
type ListListener struct {
	mu       sync.RWMutex
	messages []string
}

// NewListListener crea un listener de lista vacío.
func NewListListener() *ListListener {
	return &ListListener{}
}

// Notify guarda el mensaje.
func (l *ListListener) Notify(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, message)
	return nil
}

// Messages regresa una copia de los mensajes acumulados.
func (l *ListListener) Messages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
