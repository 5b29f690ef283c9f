// Package securestore implementa el puerto SecureStore sobre un archivo local
// cifrado: un mapa JSON de claves de sesión sellado con AES-256-GCM, con la
// llave derivada de una passphrase vía argon2id.
//
// Formato del archivo: salt(16) || nonce(12) || ciphertext.
package securestore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/invorya/stockscan-api/internal/application/ports"
)

const (
	saltSize  = 16
	nonceSize = 12
)

// Parámetros argon2id (mismos en cifrado y descifrado).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

var _ ports.SecureStore = (*FileStore)(nil)

// FileStore almacén clave-valor cifrado respaldado por un único archivo.
// Las lecturas resuelven contra el mapa en memoria; cada mutación re-sella y
// reescribe el archivo completo (sesión por dispositivo, un solo usuario:
// gana la última escritura).
type FileStore struct {
	mu   sync.RWMutex
	path string
	key  []byte
	salt []byte
	data map[string]string
}

// Open abre (o crea) el almacén en path. Si el archivo existe se descifra con
// la passphrase; una passphrase incorrecta falla aquí, no en las lecturas.
func Open(path, passphrase string) (*FileStore, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("securestore: passphrase vacía")
	}

	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.salt = make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, s.salt); err != nil {
			return nil, fmt.Errorf("securestore: generar salt: %w", err)
		}
		s.key = deriveKey(passphrase, s.salt)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("securestore: leer %s: %w", path, err)
	}
	if len(raw) < saltSize+nonceSize {
		return nil, fmt.Errorf("securestore: archivo corrupto (%d bytes)", len(raw))
	}

	s.salt = raw[:saltSize]
	s.key = deriveKey(passphrase, s.salt)

	nonce := raw[saltSize : saltSize+nonceSize]
	ciphertext := raw[saltSize+nonceSize:]
	if len(ciphertext) > 0 {
		plaintext, err := open(s.key, nonce, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("securestore: descifrar: %w", err)
		}
		if err := json.Unmarshal(plaintext, &s.data); err != nil {
			return nil, fmt.Errorf("securestore: decodificar: %w", err)
		}
	}
	return s, nil
}

// Set guarda un par clave-valor y persiste el almacén.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.persist()
}

// Get devuelve el valor de una clave, si está presente.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Remove elimina una clave y persiste el almacén.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.persist()
}

// RemoveAll vacía el almacén completo y persiste.
func (s *FileStore) RemoveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return s.persist()
}

// persist re-sella el mapa con un nonce fresco y reemplaza el archivo con
// rename para no dejar nunca un archivo a medio escribir. Llamar con mu tomado.
func (s *FileStore) persist() error {
	plaintext, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("securestore: codificar: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("securestore: generar nonce: %w", err)
	}
	ciphertext, err := seal(s.key, nonce, plaintext)
	if err != nil {
		return fmt.Errorf("securestore: cifrar: %w", err)
	}

	buf := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	buf = append(buf, s.salt...)
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("securestore: crear directorio: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("securestore: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("securestore: reemplazar: %w", err)
	}
	return nil
}

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

func seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

func open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
