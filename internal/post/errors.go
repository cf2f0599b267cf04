package post

import (
	"errors"
	"fmt"
)

// Erreurs métier du cycle de vie d'un post. Les handlers les traduisent en
// statuts HTTP distincts, une erreur de persistance reste un 500 générique.
var (
	ErrInvalidPostID = errors.New("identifiant de post invalide")
	ErrNotFound      = errors.New("post non trouvé")
	ErrForbidden     = errors.New("post appartenant à un autre utilisateur")
	ErrUploadFailed  = errors.New("le service d'hébergement n'a pas renvoyé d'URL")
)

// PersistenceError : faute du moteur de stockage (contrainte violée,
// connexion perdue). Détail loggé côté serveur, jamais exposé au client.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistance %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
