package outbound

import "github.com/guillaumesimon/albert-news/domain"

type EventSinkPort interface {
	Emit(event domain.StreamEvent) error
}
