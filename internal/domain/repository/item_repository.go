package repository

import "github.com/tu-usuario/stock-ledger/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// GetByID y GetByCode devuelven (nil, nil) cuando el ítem no existe.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetByIDForUpdate bloquea la fila del ítem dentro de la transacción actual
	// (SELECT FOR UPDATE). Solo tiene sentido sobre repos atados a una tx.
	GetByIDForUpdate(id string) (*entity.Item, error)
	// GetByCode devuelve la primera coincidencia; el código no es único.
	GetByCode(code string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
}
