package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Menu() MenuRepository
	Categories() CategoryRepository
	Reservations() ReservationRepository
	Tables() TableRepository
	Staff() StaffRepository
}
