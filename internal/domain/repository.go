package domain

// OrderRepository описывает требования к хранилищу заказов.
//
// Create и Cancel выполняются в одной транзакции со списанием/возвратом
// остатков в таблице товаров: заказы и каталог делят одно хранилище.
type OrderRepository interface {
	// Create сохраняет заказ со статусом pending, его позиции и списывает
	// остатки. Возвращает ошибку, если запись с таким ID уже существует.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// List возвращает страницу заказов, отсортированную по created_at DESC,
	// и общее число подходящих записей. Пустой статус означает «все».
	List(status OrderStatus, page, pageSize int32) ([]Order, int32, error)
	// ListByUser возвращает страницу заказов пользователя и общее их число.
	ListByUser(userID string, page, pageSize int32) ([]Order, int32, error)
	// UpdateStatus безусловно перезаписывает статус и адрес доставки.
	// Пустой адрес оставляет прежнее значение.
	UpdateStatus(id string, status OrderStatus, shippingAddress string) (Order, error)
	// Cancel отменяет заказ: блокирует строку, проверяет владельца (если
	// userID непустой) и терминальные статусы, возвращает остатки по всем
	// позициям и переводит заказ в cancelled. Любой отказ откатывает
	// транзакцию целиком.
	Cancel(id, userID string) error
}

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// Create сохраняет новый товар.
	Create(product Product) error
	// Get возвращает товар или ErrProductNotFound.
	Get(id string) (Product, error)
	// GetByIDs возвращает товары по списку идентификаторов; отсутствующие
	// идентификаторы в результат не попадают.
	GetByIDs(ids []string) (map[string]Product, error)
	// GetPrice возвращает актуальную цену товара в минимальных единицах.
	GetPrice(id string) (int64, error)
	// List возвращает страницу товаров (created_at DESC) и общее их число.
	// Пустая категория означает «все».
	List(category string, page, pageSize int32) ([]Product, int32, error)
	// Update перезаписывает атрибуты товара и возвращает обновлённую запись.
	Update(product Product) (Product, error)
	// Delete удаляет товар или возвращает ErrProductNotFound.
	Delete(id string) error
	// AdjustStock атомарно меняет остаток на delta (может быть отрицательной)
	// под блокировкой строки; уход в минус отклоняется ErrInsufficientStock.
	AdjustStock(id string, delta int32) (int32, error)
}

// UserRepository описывает требования к хранилищу учётных записей.
type UserRepository interface {
	// Create сохраняет пользователя; нарушение уникальности username/email
	// возвращается как ErrDuplicateUser.
	Create(user User) error
	// Get возвращает пользователя или ErrUserNotFound.
	Get(id string) (User, error)
	// GetByUsername возвращает пользователя по имени или ErrUserNotFound.
	GetByUsername(username string) (User, error)
	// UpdateEmail меняет email и возвращает обновлённую запись.
	UpdateEmail(id, email string) (User, error)
}
