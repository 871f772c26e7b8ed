package session

import "shopmate/internal/domain"

// ItemPatch carries the optional fields of a cart item edit.
type ItemPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Checked  *bool
}

// AddToCart appends a product with quantity 1, or increments the quantity
// when the id is already present.
func (s *Session) AddToCart(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: p, Quantity: 1, Checked: false})
}

func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Session) removeLocked(productID string) {
	out := s.cart[:0]
	for _, it := range s.cart {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	s.cart = out
}

// UpdateQuantity sets an item's quantity; zero or less removes the item.
func (s *Session) UpdateQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity = qty
			return
		}
	}
}

func (s *Session) ToggleCheck(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Checked = !s.cart[i].Checked
			return
		}
	}
}

func (s *Session) UpdateItem(productID string, patch ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID != productID {
			continue
		}
		if patch.Name != nil {
			s.cart[i].Name = *patch.Name
		}
		if patch.Category != nil {
			s.cart[i].Category = *patch.Category
		}
		if patch.Price != nil {
			s.cart[i].Price = *patch.Price
		}
		if patch.Checked != nil {
			s.cart[i].Checked = *patch.Checked
		}
		return
	}
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

// Cart returns a copy of the cart items in insertion order.
func (s *Session) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal sums price*quantity; unpriced items (AI-driven adds) count as 0.
func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
