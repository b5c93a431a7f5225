package dogstatsd

/*

Copyright (c) 2017 Andrey Smirnov

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

// sendLoop drains the hand-off queue, one socket write per datagram, in
// submission order
//
// The loop is the exclusive owner of the socket. It terminates on Close or
// on the first write error, with no restart: once the loop is gone, every
// following submission is dropped and counted on the caller side.
func (c *Client) sendLoop() {
	defer close(c.senderDone)
	defer func() { _ = c.conn.Close() }()

	for {
		select {
		case <-c.shutdown:
			return
		case buf := <-c.sendQueue:
			if _, err := c.conn.WriteToUDP(buf, c.raddr); err != nil {
				c.options.Logger.Warnw("error writing to dogstatsd socket, sender is terminating",
					"error", err)
				return
			}

			c.putBuf(buf)
		}
	}
}
