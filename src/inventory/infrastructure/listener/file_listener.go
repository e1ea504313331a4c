package listener

import (
	"fmt"
	"os"
)

// FileListener agrega cada cambio del inventario a un archivo de log de
// texto, una línea por mensaje.
type FileListener struct {
	filename string
}

// NewFileListener crea un listener que escribe en el archivo dado.
func NewFileListener(filename string) *FileListener {
	return &FileListener{filename: filename}
}

// Notify agrega el mensaje al final del archivo.
func (l *FileListener) Notify(message string) error {
	f, err := os.OpenFile(l.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening log file %s: %w", l.filename, err)
	}
	defer f.Close()

	if _, err := f.WriteString(message + "\n"); err != nil {
		return fmt.Errorf("error writing log file %s: %w", l.filename, err)
	}
	return nil
}
