package sessions

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/draft"
)

// DefaultIdleTTL время, после которого неактивный черновик выгружается из памяти
const DefaultIdleTTL = 30 * time.Minute

type entry struct {
	machine    *draft.Machine
	lastAccess time.Time
}
