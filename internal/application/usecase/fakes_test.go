package usecase_test

import (
	"github.com/obejashaundev/nissan-sales-server/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete. Cada fake guarda las entidades por id y expone contadores de
// borrado físico para verificar el flujo soft/hard.

type fakeRoleRepo struct {
	roles       map[string]*entity.Role
	hardDeletes int
}

func newFakeRoleRepo(seed ...*entity.Role) *fakeRoleRepo {
	f := &fakeRoleRepo{roles: map[string]*entity.Role{}}
	for _, r := range seed {
		f.roles[r.ID] = r
	}
	return f
}

func (f *fakeRoleRepo) Create(r *entity.Role) error { f.roles[r.ID] = r; return nil }

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) { return f.roles[id], nil }

func (f *fakeRoleRepo) GetActiveByName(name string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Name == name && r.IsActive && !r.IsRemoved {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) ListActive() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		if r.IsActive && !r.IsRemoved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(r *entity.Role) error { f.roles[r.ID] = r; return nil }

func (f *fakeRoleRepo) HardDelete(id string) error {
	delete(f.roles, id)
	f.hardDeletes++
	return nil
}

type fakeUserRepo struct {
	users       map[string]*entity.UserWithRole
	hardDeletes int
}

func newFakeUserRepo(seed ...*entity.UserWithRole) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.UserWithRole{}}
	for _, u := range seed {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = &entity.UserWithRole{User: *u}
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return &u.User, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u.User, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDWithRole(id string) (*entity.UserWithRole, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) ListActiveWithRole() ([]*entity.UserWithRole, error) {
	var out []*entity.UserWithRole
	for _, u := range f.users {
		if u.IsActive && !u.IsRemoved {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	if existing, ok := f.users[u.ID]; ok {
		existing.User = *u
	}
	return nil
}

func (f *fakeUserRepo) HardDelete(id string) error {
	delete(f.users, id)
	f.hardDeletes++
	return nil
}

type fakeCatalogRepo struct {
	items       map[string]*entity.CatalogItem
	order       []string
	hardDeletes int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: map[string]*entity.CatalogItem{}}
}

func (f *fakeCatalogRepo) Create(it *entity.CatalogItem) error {
	f.items[it.ID] = it
	f.order = append(f.order, it.ID)
	return nil
}

func (f *fakeCatalogRepo) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	it := f.items[id]
	if it == nil || it.Kind != kind {
		return nil, nil
	}
	return it, nil
}

func (f *fakeCatalogRepo) ListActive(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	var out []*entity.CatalogItem
	for _, id := range f.order {
		it := f.items[id]
		if it != nil && it.Kind == kind && it.IsActive && !it.IsRemoved {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(it *entity.CatalogItem) error { f.items[it.ID] = it; return nil }

func (f *fakeCatalogRepo) HardDelete(kind entity.CatalogKind, id string) error {
	delete(f.items, id)
	f.hardDeletes++
	return nil
}

type fakeCustomerRepo struct {
	customers   map[string]*entity.Customer
	hardDeletes int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) ListActiveExpanded() ([]*entity.CustomerExpanded, error) {
	var out []*entity.CustomerExpanded
	for _, c := range f.customers {
		if c.IsActive && !c.IsRemoved {
			out = append(out, &entity.CustomerExpanded{Customer: *c})
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error { f.customers[c.ID] = c; return nil }

func (f *fakeCustomerRepo) HardDelete(id string) error {
	delete(f.customers, id)
	f.hardDeletes++
	return nil
}
