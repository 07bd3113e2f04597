package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/wc_paymeta/pkg/metrics"
)

// evictLRU — удаляет самый давно занятый ID.
func (d *EventDeduper) evictLRU() {
	if back := d.ll.Back(); back != nil {
		d.removeElement(back)
		metrics.DedupeOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (d *EventDeduper) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(d.index, ent.id)
	}
	d.ll.Remove(elem)
}

func (d *EventDeduper) isExpired(ent *entry, now time.Time) bool {
	if d.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (d *EventDeduper) expiryFrom(now time.Time) time.Time {
	if d.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(d.ttl)
}

// pruneExpiredFromBack — чистит хвост до первого актуального ID.
// Порядок в списке — порядок Claim, поэтому хвост истекает первым.
func (d *EventDeduper) pruneExpiredFromBack(now time.Time) {
	if d.ttl <= 0 {
		return
	}
	for back := d.ll.Back(); back != nil; back = d.ll.Back() {
		ent, ok := back.Value.(*entry)
		if ok && !now.After(ent.expiresAt) {
			return
		}
		d.removeElement(back)
		metrics.DedupeOps.WithLabelValues("expired").Inc()
	}
}
