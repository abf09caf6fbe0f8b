package bench

import (
	"runtime"

	"go.uber.org/zap"

	"qmark/pkg/protocol"
)

// qtask is the queue micro server. It reads its inbound queue in FIFO order
// and forwards each relay message to the client queue named by the target
// field, appending its own id to the path. An exit command terminates it.
func (b *Bench) qtask(qtid int) error {
	self := protocol.NewID(protocol.KindQTask, qtid).String()
	inbox := b.qtaskQueues[qtid]
	for {
		raw, ok := inbox.Get()
		if !ok {
			return nil
		}
		msg, err := protocol.DecodeMessage(raw)
		if err != nil {
			return err
		}
		if b.debug {
			zap.L().Debug("qtask", zap.Int("id", qtid), zap.String("msg", raw))
		}
		if msg.Command == protocol.CmdExit {
			return nil
		}
		target, err := protocol.ParseID(msg.Target)
		if err != nil {
			return err
		}
		if target.Kind == protocol.KindClientQ && target.Index >= 0 && target.Index < b.numCTasks {
			msg.Path = append(msg.Path, self)
			b.ctaskQueues[target.Index].Put(msg.Encode())
		} else {
			b.dropped.Add(1)
			if b.debug {
				zap.L().Debug("qtask drop", zap.Int("id", qtid), zap.String("target", msg.Target))
			}
		}
		runtime.Gosched()
	}
}
