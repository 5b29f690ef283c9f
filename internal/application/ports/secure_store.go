package ports

// SecureStore es el puerto del almacén cifrado de pares clave-valor donde se
// persiste la sesión local. Las lecturas no fallan (resuelven contra el estado
// cargado en memoria); las escrituras pueden fallar al persistir.
type SecureStore interface {
	Set(key, value string) error
	Get(key string) (string, bool)
	Remove(key string) error
	RemoveAll() error
}
