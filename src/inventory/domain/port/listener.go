package port

// ChangeListener recibe una descripción legible de cada mutación del
// inventario. Los listeners son fire-and-forget: un error (o un panic)
// en uno no aborta la operación ni bloquea a los demás.
type ChangeListener interface {
	Notify(message string) error
}
